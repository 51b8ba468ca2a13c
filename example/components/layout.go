package components

import (
	"github.com/pthm/livedom"
	"github.com/pthm/livedom/lib/dom"
	"github.com/pthm/livedom/lib/report"
)

// Layout wraps a page with navigation between the app's routes.
func Layout(app *livedom.App, children ...any) *livedom.Tag {
	nav := livedom.Nav().Class("nav")
	for _, route := range app.Routes() {
		nav.Push(livedom.Button(route).On("click", func(dom.Event) {
			if err := app.Navigate(route); err != nil {
				report.Report(&report.Error{Op: "nav " + route, Kind: report.KindDOM, Err: err})
			}
		}))
	}
	return livedom.Div(
		livedom.Header(livedom.H1("livedom"), nav),
		livedom.Main(children...),
	).Class("layout")
}
