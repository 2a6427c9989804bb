// Package domain contains the core business entities of the classification
// service: users and the letter-composition rules they own. It is independent
// of storage and transport; the classification engine itself lives in the
// classify subpackage.
package domain
