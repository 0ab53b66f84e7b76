// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying data storage mechanism from
// the application's core logic, allowing the access policy in the service
// layer to remain independent of specific database technologies.
//
// Every store exposes WithTx so a service can run several store calls inside
// one transaction started with RunInTransaction.
package store
