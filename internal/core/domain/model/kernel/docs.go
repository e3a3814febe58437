// Package kernel contains shared value objects used across the domain model.
// Currently this is the UUID identity type; every aggregate and entity in
// the system is identified by a kernel.UUID.
package kernel
