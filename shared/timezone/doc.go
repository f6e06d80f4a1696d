// Package timezone centralizes time handling so every timestamp the API
// stores or renders uses the single configured application location.
package timezone
