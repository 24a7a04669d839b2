// Package renderer turns the derived portfolio state into markdown reports.
// It holds no state and performs no computation: every figure it prints was
// computed by the folio package.
package renderer

// label returns the display label for an asset: the symbol when the quote
// provided one, the raw asset id otherwise.
func label(asset, symbol string) string {
	if symbol != "" {
		return symbol
	}
	return asset
}
