// Package formatter implements the formatter façade behind the HTTP API.
//
// Every operation is a short, stateless composition of calls into a
// domain.FormatterProvider: editing a selector gathers its parse result,
// text components, next component and samples into one domain.Edit; menus
// are built from provider samples plus stored presets.
package formatter
