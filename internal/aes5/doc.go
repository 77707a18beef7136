// Package aes5 validates and classifies digital-audio sampling frequencies
// against the AES5 preferred-sampling-frequency standard.
//
// The package exposes three collaborating components. ComplianceEngine
// answers exact clause-membership questions ("is 44100 Hz a clause 5.2
// frequency?"). FrequencyValidator resolves an arbitrary frequency to the
// closest standard frequency, computes its deviation in parts per million
// and checks it against a tolerance budget. RateCategoryManager places a
// frequency into one of the six rate bands defined relative to the 48 kHz
// reference and computes its rate multiplier.
//
// All reference tables are immutable after construction and every public
// operation is total: failures are reported through result statuses, never
// panics. Only clause identifiers and numeric boundaries are stored; no
// text of the standard is reproduced.
package aes5
