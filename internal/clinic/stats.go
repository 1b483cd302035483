package clinic

// Stats represents the dashboard metrics derived from the cached
// collections. These are plain reads over the client-side cache, never a
// remote call.
type Stats struct {
	TotalPatients       int     `json:"total_patients"`
	TotalAppointments   int     `json:"total_appointments"`
	PendingAppointments int     `json:"pending_appointments"`
	PaidRevenue         float64 `json:"paid_revenue"`
}

// ComputeStats aggregates dashboard metrics from collection snapshots.
// Revenue counts the net amount of Paid invoices only.
func ComputeStats(patients []Patient, appointments []Appointment, invoices []Invoice) Stats {
	stats := Stats{
		TotalPatients:     len(patients),
		TotalAppointments: len(appointments),
	}
	for _, a := range appointments {
		if a.Status == StatusPending {
			stats.PendingAppointments++
		}
	}
	for _, inv := range invoices {
		if inv.Status == InvoicePaid {
			stats.PaidRevenue += inv.Net
		}
	}
	return stats
}
