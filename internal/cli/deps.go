package cli

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/xolan/timesheet/internal/service"
)

// Deps is what a command handler talks to: the process streams, the exit
// hook and the loaded services.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Exit   func(code int)

	// Services is nil when the settings could not be loaded
	Services *service.Services
	// LoadErr is the reason Services is nil
	LoadErr error
}

// NewDeps wires services to the process streams and os.Exit
func NewDeps(services *service.Services) *Deps {
	return &Deps{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Stdin:    os.Stdin,
		Exit:     os.Exit,
		Services: services,
	}
}

// DefaultDeps loads the services from the user's settings file. A load
// failure is kept in LoadErr and reported by the first command needing it.
func DefaultDeps() *Deps {
	services, err := service.NewServices()
	if err != nil {
		log.Debugf("failed to load services: %v", err)
	}

	d := NewDeps(services)
	d.LoadErr = err
	return d
}

var deps = DefaultDeps()

// SetDeps replaces the deps used by the commands
func SetDeps(d *Deps) {
	deps = d
}

// ResetDeps reloads the default deps
func ResetDeps() {
	deps = DefaultDeps()
}

// GetDeps returns the deps used by the commands
func GetDeps() *Deps {
	return deps
}
