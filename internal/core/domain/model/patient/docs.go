// Package patient contains the account entity shared by staff and patients,
// and the Role type that drives the visibility gate. A patient-role account
// is additionally the subject of orders and samples.
package patient
