// Package dto contains Data Transfer Objects for HTTP responses.
//
// DTOs are separate from domain entities so the wire shape can change
// without touching the core model.
package dto
