// Package restaurant contains the Restaurant aggregate.
package restaurant
