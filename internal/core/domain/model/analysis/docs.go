// Package analysis contains the catalog entity describing the laboratory's
// offered analyses: name, unit cost, and turnaround time. Catalog entries are
// soft-deleted only, because placed orders snapshot their pricing at creation
// time and historical totals must stay reconstructible.
package analysis
