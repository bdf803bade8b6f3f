package site

import (
	"context"
	"os"

	"git.home.luguber.info/inful/sissigen/internal/content"
	"git.home.luguber.info/inful/sissigen/internal/foundation/errors"
	"git.home.luguber.info/inful/sissigen/internal/logfields"
	"git.home.luguber.info/inful/sissigen/internal/post"
	"git.home.luguber.info/inful/sissigen/internal/render"
)

// stagePrepare checks the project layout and loads templates. Nothing is
// written yet, so failures here leave an existing output untouched.
func stagePrepare(_ context.Context, bs *BuildState) error {
	if err := requireDir(bs.Layout.StaticDir()); err != nil {
		return err
	}
	if err := requireFile(bs.Layout.IndexSource()); err != nil {
		return err
	}
	r, err := render.Load(bs.Layout.TemplatesDir())
	if err != nil {
		return err
	}
	bs.Renderer = r
	return nil
}

func stageReadContent(_ context.Context, bs *BuildState) error {
	paths, err := content.Find(bs.Layout.PostsDir())
	if err != nil {
		return err
	}
	bs.Sources = paths
	bs.Report.Posts = len(paths)
	bs.logger().Debug("Found posts", logfields.Path(bs.Layout.PostsDir()), logfields.Count(len(paths)))
	return nil
}

func stageBuildItems(ctx context.Context, bs *BuildState) error {
	pb := bs.Builder.postBuilder().WithLogger(bs.logger())
	items := make([]*post.Item, 0, len(bs.Sources))
	for _, src := range bs.Sources {
		if err := ctx.Err(); err != nil {
			return newCanceledStageError(StageBuildItems, err)
		}
		it, err := pb.Build(src)
		if err != nil {
			return err
		}
		items = append(items, it)
	}
	bs.Items = items
	return nil
}

func stageSort(_ context.Context, bs *BuildState) error {
	if err := post.CheckCollisions(bs.Items); err != nil {
		return err
	}
	bs.Listing = post.Listing(bs.Items)
	return nil
}

func stageRender(_ context.Context, bs *BuildState) error {
	pages := make([]Page, 0, len(bs.Items))
	for _, it := range bs.Items {
		body, err := bs.Renderer.RenderPost(it.HTML)
		if err != nil {
			return errors.WrapError(err, errors.CategoryTemplate, "failed to render post").
				WithContext("path", it.Path).
				Build()
		}
		pages = append(pages, Page{Path: it.Output, Body: body})
	}
	bs.Pages = pages

	bs.logger().Info("Making contents.")
	src, err := content.Read(bs.Layout.IndexSource())
	if err != nil {
		return err
	}
	lead, err := bs.Builder.converter.Convert([]byte(src))
	if err != nil {
		return err
	}
	bs.Lead = lead
	index, err := bs.Renderer.RenderListing(lead, post.Views(bs.Listing))
	if err != nil {
		return err
	}
	bs.Index = index
	return nil
}

func stageWrite(_ context.Context, bs *BuildState) error {
	bs.logger().Info("Writing files.")
	if err := NewWriter(bs.Layout).Write(bs.Pages, bs.Index); err != nil {
		return err
	}
	bs.Report.RenderedPages = len(bs.Pages)
	bs.Report.StaticCopied = true
	return nil
}

func requireDir(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "required directory not found").
			Fatal().
			WithContext("path", path).
			Build()
	}
	if !st.IsDir() {
		return errors.ConfigError("required path is not a directory").WithContext("path", path).Build()
	}
	return nil
}

func requireFile(path string) error {
	st, err := os.Stat(path)
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "required file not found").
			Fatal().
			WithContext("path", path).
			Build()
	}
	if st.IsDir() {
		return errors.ConfigError("required path is a directory").WithContext("path", path).Build()
	}
	return nil
}
