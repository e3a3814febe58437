// Package order contains the order aggregate: the root entity together with
// its line items and the lifecycle status state machine.
//
// The aggregate owns its customer and its line items as one consistency
// unit. The status machine is permissive between the non-terminal statuses
// NEW, PREPARING and DELIVERING; DELIVERED is terminal and freezes the
// whole aggregate.
package order
