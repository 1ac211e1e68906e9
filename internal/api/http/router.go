package http

import (
	"github.com/Milkwastaken07/DEHA-Rental/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every resource handler onto the HTTP surface.
func NewRouter(
	propertySvc service.PropertyService,
	tenantSvc service.TenantService,
	managerSvc service.ManagerService,
	applicationSvc service.ApplicationService,
	leaseSvc service.LeaseService,
) *mux.Router {
	propertyHandler := NewPropertyHandler(propertySvc)
	tenantHandler := NewTenantHandler(tenantSvc)
	managerHandler := NewManagerHandler(managerSvc)
	applicationHandler := NewApplicationHandler(applicationSvc)
	leaseHandler := NewLeaseHandler(leaseSvc)

	r := mux.NewRouter()
	r.Use(RequestLogger)

	// Properties
	r.HandleFunc("/properties/", propertyHandler.Search).Methods("GET")
	r.HandleFunc("/properties/create", propertyHandler.Create).Methods("POST")
	r.HandleFunc("/properties/{id}/", propertyHandler.Get).Methods("GET")

	// Tenants
	r.HandleFunc("/tenants/", tenantHandler.Create).Methods("POST")
	r.HandleFunc("/tenants/{cognitoId}/", tenantHandler.Get).Methods("GET")
	r.HandleFunc("/tenants/{cognitoId}/update", tenantHandler.Update).Methods("PUT")
	r.HandleFunc("/tenants/{cognitoId}/current-residences", tenantHandler.CurrentResidences).Methods("GET")
	r.HandleFunc("/tenants/{cognitoId}/favorites/{propertyId}/add", tenantHandler.AddFavorite).Methods("POST")
	r.HandleFunc("/tenants/{cognitoId}/favorites/{propertyId}/remove", tenantHandler.RemoveFavorite).Methods("DELETE")

	// Managers
	r.HandleFunc("/managers/", managerHandler.Create).Methods("POST")
	r.HandleFunc("/managers/{cognitoId}/", managerHandler.Get).Methods("GET")
	r.HandleFunc("/managers/{cognitoId}/update", managerHandler.Update).Methods("PUT")

	// Leases
	r.HandleFunc("/leases/", leaseHandler.List).Methods("GET")
	r.HandleFunc("/leases/{id}/payments", leaseHandler.Payments).Methods("GET")

	// Applications
	r.HandleFunc("/applications/", applicationHandler.List).Methods("GET")
	r.HandleFunc("/applications/", applicationHandler.Submit).Methods("POST")
	r.HandleFunc("/applications/{id}/status/", applicationHandler.UpdateStatus).Methods("PUT")

	return r
}
