// Package kernel provides the value objects shared by every marketplace aggregate.
//
// The package includes:
//   - UUID: identifier of users, retailers, orders and activity records
//   - Money: a non-negative decimal amount used for prices and order totals
//
// Both types are immutable and safe for concurrent use. Their zero values are
// meaningful only where documented: a zero UUID is invalid, a zero Money is 0.
package kernel
