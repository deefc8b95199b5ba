// Package models contains the record types shared by the weapons builder and the renderers.
package models
