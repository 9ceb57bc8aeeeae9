// Package services implements the driving port interfaces.
// Services orchestrate the domain unit algebra and calls to driven ports
// (unit stores, configuration).
package services
