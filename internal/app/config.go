package app

// Config holds runtime wiring options for building the app.
type Config struct {
	Dir string // keystore directory, e.g. $HOME/.kayring
}
