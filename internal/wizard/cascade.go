// Package wizard holds the multi-step form state machines behind trip
// curation and signup, with the dependent-field cascade that keeps
// company, vehicle, route and price selections consistent.
package wizard

import (
	"sort"

	"odyssweb/internal/domain"
)

// Catalog is the reference data the trip wizard filters over. It is
// fetched once per wizard session; fetch failures leave empty slices and
// the wizard degrades to empty option lists.
type Catalog struct {
	Companies []domain.Company
	Vehicles  []domain.CompanyVehicle
	Routes    []domain.CompanyRoute
}

// CompanyNames lists the selectable transport partners.
func (c Catalog) CompanyNames() []string {
	names := make([]string, 0, len(c.Companies))
	for _, co := range c.Companies {
		if co.CompanyName != "" {
			names = append(names, co.CompanyName)
		}
	}
	return names
}

// companyID resolves a partner name back to its id, "" when unknown.
func (c Catalog) companyID(name string) string {
	for _, co := range c.Companies {
		if co.CompanyName == name {
			return co.ID
		}
	}
	return ""
}

// VehiclesForCompany returns the active vehicles belonging to the named
// partner. An empty name returns nothing: the vehicle list follows the
// company selection.
func (c Catalog) VehiclesForCompany(companyName string) []domain.CompanyVehicle {
	id := c.companyID(companyName)
	if id == "" {
		return nil
	}
	var out []domain.CompanyVehicle
	for _, v := range c.Vehicles {
		if v.CompanyID == id && v.IsActive {
			out = append(out, v)
		}
	}
	return out
}

// VehicleByType finds a vehicle of the given type among the partner's
// fleet.
func (c Catalog) VehicleByType(companyName, vehicleType string) (domain.CompanyVehicle, bool) {
	for _, v := range c.VehiclesForCompany(companyName) {
		if v.Type == vehicleType {
			return v, true
		}
	}
	return domain.CompanyVehicle{}, false
}

// routesFor returns the routes operated by the named partner. An empty
// or unknown name returns nothing: route options follow the company
// selection the same way vehicles do.
func (c Catalog) routesFor(companyName string) []domain.CompanyRoute {
	id := c.companyID(companyName)
	if id == "" {
		return nil
	}
	var out []domain.CompanyRoute
	for _, r := range c.Routes {
		if r.CompanyID == id {
			out = append(out, r)
		}
	}
	return out
}

// Origins lists the distinct departure cities across the partner's
// routes, in first-seen order.
func (c Catalog) Origins(companyName string) []string {
	return distinct(c.routesFor(companyName), func(r domain.CompanyRoute) string { return r.Origin })
}

// Destinations lists the distinct destinations the partner serves from
// origin.
func (c Catalog) Destinations(companyName, origin string) []string {
	if origin == "" {
		return nil
	}
	var filtered []domain.CompanyRoute
	for _, r := range c.routesFor(companyName) {
		if r.Origin == origin {
			filtered = append(filtered, r)
		}
	}
	return distinct(filtered, func(r domain.CompanyRoute) string { return r.Destination })
}

// DepartureTimes lists the distinct departure times the partner serves
// on the pair, sorted ascending. Routes without a time are skipped.
func (c Catalog) DepartureTimes(companyName, origin, destination string) []string {
	if origin == "" || destination == "" {
		return nil
	}
	seen := map[string]struct{}{}
	var times []string
	for _, r := range c.routesFor(companyName) {
		if r.Origin != origin || r.Destination != destination || r.DepTime == "" {
			continue
		}
		if _, ok := seen[r.DepTime]; ok {
			continue
		}
		seen[r.DepTime] = struct{}{}
		times = append(times, r.DepTime)
	}
	sort.Strings(times)
	return times
}

// ResolveRoute finds the single partner route matching the full
// selection. The resolved route's price is authoritative for the trip.
func (c Catalog) ResolveRoute(companyName, origin, destination, depTime string) (domain.CompanyRoute, bool) {
	if origin == "" || destination == "" || depTime == "" {
		return domain.CompanyRoute{}, false
	}
	for _, r := range c.routesFor(companyName) {
		if r.Origin == origin && r.Destination == destination && r.DepTime == depTime {
			return r, true
		}
	}
	return domain.CompanyRoute{}, false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func distinct(routes []domain.CompanyRoute, key func(domain.CompanyRoute) string) []string {
	seen := map[string]struct{}{}
	var out []string
	for _, r := range routes {
		k := key(r)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
