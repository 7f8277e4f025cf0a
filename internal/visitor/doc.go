// Package visitor defines the Visitor record, the Action sum type that
// decides how a visitor is received, and the name normalization used as the
// lookup key everywhere else in the application.
package visitor
