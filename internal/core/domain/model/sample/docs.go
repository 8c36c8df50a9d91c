// Package sample contains the Sample aggregate and its result-schema
// registry.
//
// A sample is one physical specimen collected against an order line item.
// Its category (blood chemistry or complete blood count) is inferred from
// the analysis name at collection time and fixes which result schema the
// payload must satisfy. Result entry and patient visibility release happen
// in one step; released results remain editable through re-validation.
package sample
