// Package service contains the application use cases. It orchestrates the
// rule store and the classification engine on behalf of an authenticated
// user.
//
// Services receive their dependencies through constructor injection and
// depend only on store interfaces, never on a specific database
// implementation. Expected conditions are reported as sentinel errors
// (ErrNotOwned, ErrInvalidCondition, store.ErrRuleNotFound, ...) that the API
// layer maps to status codes; unexpected failures are wrapped in
// ServiceError.
package service
