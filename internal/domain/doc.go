// Package domain defines the algorithm selectors, key types and service
// contracts shared across textseal.
// It contains plain types and contracts (interfaces) only.
package domain
