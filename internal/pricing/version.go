package pricing

import "time"

// DefaultVersion identifies the built-in configuration, used when no
// version has been saved or activated.
const DefaultVersion = 0

// Version is one saved pricing configuration. Override holds only the
// fields the operator changed; Resolve applies it over the defaults.
type Version struct {
	Version   int           `json:"version"`
	Label     string        `json:"label"`
	Override  Configuration `json:"override"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"createdAt"`
}
