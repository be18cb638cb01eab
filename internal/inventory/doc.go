// Package inventory derives the read-only views of the kitchen: whether a
// recipe can be cooked from current stock, the dashboard alerts, and the
// inventory reports.
//
// Every function takes collections that were already loaded from the store
// and an explicit "now". Nothing here touches storage or keeps state between
// calls, so each view is recomputed from whatever the caller fetched.
package inventory
