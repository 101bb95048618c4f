package theme

// PreferenceKey is the single persisted key for the mode.
const PreferenceKey = "theme"

// PreferenceStore is the persistence collaborator. *store.Store satisfies it.
type PreferenceStore interface {
	GetPreference(key string) (string, error)
	SetPreference(key, value string) error
}

// Controller owns the current mode and its derived palette and styles.
// Consumers hold an explicit *Controller reference; there is no package
// global.
type Controller struct {
	prefs   PreferenceStore
	mode    Mode
	palette Palette
	styles  Styles
}

// NewController loads the persisted mode and derives the visual tokens.
// An absent or unparseable preference resolves to dark.
func NewController(prefs PreferenceStore) *Controller {
	c := &Controller{prefs: prefs}
	mode := ModeDark
	if v, err := prefs.GetPreference(PreferenceKey); err == nil {
		if m, ok := parseMode(v); ok {
			mode = m
		}
	}
	c.apply(mode)
	return c
}

func (c *Controller) apply(m Mode) {
	c.mode = m
	c.palette = palettes[m]
	c.styles = newStyles(c.palette)
}

// Toggle flips dark and light, persists the new mode, and re-derives the
// palette and styles. Persistence failures are ignored: the session keeps
// the new mode either way.
func (c *Controller) Toggle() {
	next := ModeDark
	if c.mode == ModeDark {
		next = ModeLight
	}
	c.apply(next)
	c.prefs.SetPreference(PreferenceKey, string(next))
}

func (c *Controller) Mode() Mode       { return c.mode }
func (c *Controller) Palette() Palette { return c.palette }

// Styles returns the current style set. The pointer is only valid until the
// next Toggle; views should call this per render.
func (c *Controller) Styles() *Styles { return &c.styles }
