// Package workers runs the application's background workers: anything with
// long-lived goroutines that must be started at boot, such as the crypto
// pool.
package workers

// Worker is a background component started once at boot. Run either blocks
// for the duration of the work or spawns goroutines internally.
type Worker interface {
	Run()
}
