// Package curly is a minimal template-reference compiler. Templates are
// plain text with {{name}} placeholders; every placeholder resolves to a
// zero-argument method on a presenter object, so all logic lives in the
// presenter and none in the template. Substituted values are always escaped.
//
// A minimal presenter and render:
//
//	type PostPresenter struct {
//		curly.Base
//	}
//
//	func (p *PostPresenter) Title() string {
//		return p.Input("post").(*Post).Title
//	}
//
//	p := &PostPresenter{}
//	_ = p.Bind(nil, curly.NewSchema("post"), map[string]any{"post": post})
//	out, err := curly.Render("<h1>{{Title}}</h1>", p)
//
// Compile once and reuse the routine when rendering the same template
// repeatedly; see pkg/render for compiled-template reuse and fragment
// caching driven by presenter cache descriptors.
package curly
