// Package kernel contains shared value objects used across the domain
// model. Currently that is the ID value object: the store-assigned,
// 24-hex-character shipment identifier. Wrapping the raw driver type keeps
// identifier validation in one place and prevents handing unchecked
// strings to the persistence layer.
package kernel
