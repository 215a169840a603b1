// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (record/state), the error taxonomy, and contracts
// (interfaces) only.
package domain
