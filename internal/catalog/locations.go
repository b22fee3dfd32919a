// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package catalog

var defaultLocations = map[string][]string{
	"Uttar Pradesh":  {"Lucknow", "Kanpur", "Varanasi", "Agra", "Noida"},
	"Maharashtra":    {"Mumbai", "Pune", "Nagpur", "Nashik", "Aurangabad"},
	"Tamil Nadu":     {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem"},
	"Karnataka":      {"Bengaluru", "Mysuru", "Mangalore", "Hubli", "Belgaum"},
	"West Bengal":    {"Kolkata", "Asansol", "Siliguri", "Durgapur", "Howrah"},
	"Delhi":          {"New Delhi", "Dwarka", "Rohini", "Vasant Kunj", "Saket"},
	"Gujarat":        {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar"},
	"Rajasthan":      {"Jaipur", "Jodhpur", "Udaipur", "Kota", "Bikaner"},
	"Andhra Pradesh": {"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Tirupati"},
	"Punjab":         {"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Bathinda"},
}
