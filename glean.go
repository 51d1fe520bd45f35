// Package glean heuristically extracts structured facts from web pages
// (title, description, breadcrumbs, FAQs, carousel items, price) and
// validates schema.org JSON-LD markup.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g. http/, extract/, jsonld/).
package glean
