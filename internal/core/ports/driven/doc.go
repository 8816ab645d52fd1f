// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - LocaleProvider: Selectable locales and locale-bound collation
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - KeySource: Supplies sort keys when the request carries none.
//     Without it, requests must carry their own keys.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
