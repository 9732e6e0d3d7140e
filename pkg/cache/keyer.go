package cache

// Keyer generates cache keys.
type Keyer interface {
	// HeightKey generates a key for the committed body height of a table.
	HeightKey(table string, opts HeightKeyOpts) string
}

// HeightKeyOpts are the environment values a committed height depends on.
// A height measured in an 80x24 terminal says nothing about a 200x60 one.
type HeightKeyOpts struct {
	ViewportWidth  int  `json:"vw"`
	ViewportHeight int  `json:"vh"`
	Nested         bool `json:"nested,omitempty"`
	ParentManaged  bool `json:"parent,omitempty"`
}

// DefaultKeyer is the standard Keyer.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// HeightKey returns "height:<table>:<hash of opts>".
func (DefaultKeyer) HeightKey(table string, opts HeightKeyOpts) string {
	return hashKey("height:"+table, opts)
}
