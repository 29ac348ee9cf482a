// Package kernel contains shared value objects used across the domain
// model. It currently holds the UUID identifier type; domain-specific value
// objects live next to their aggregates.
package kernel
