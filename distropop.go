// Package distropop answers search queries about Linux and BSD distributions
// with popularity statistics scraped from DistroWatch detail pages.
// It fetches one detail page per candidate, extracts rank and hits for five
// rolling time windows, and ranks the candidates by their 6-month rank.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, http/).
package distropop

// DefaultBaseURL is the DistroWatch site the statistics are scraped from.
const DefaultBaseURL = "https://distrowatch.com"
