// Package hunter turns raw marketplace listing pages into normalized,
// structured records an alerting pipeline can act on. It extracts price,
// specification, shipping mode, geographic distance, and seller trust from
// inconsistent, partially-missing markup without ever failing hard.
//
// This package contains domain types, interfaces, and the pure extraction
// logic following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency
// (e.g., goquery/, sqlite/, http/).
package hunter
