package hxdialog

// SwapMode is an HTMX hx-swap strategy.
type SwapMode string

// SwapNone discards the response body. Dialog actions answer with headers
// only, so both the wrapper and the close button use it.
const SwapNone SwapMode = "none"
