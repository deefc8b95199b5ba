// Package middleware groups the fiber middleware mounted by the serve command.
//
// Subpackages:
//   - rayid: tags each request with an X-Ray-ID (reused when the client sends one)
//     and stores it in Locals("ray_id") for logger.WithRayID.
//   - auth: rejects requests lacking the configured X-API-Key. With no key
//     configured every request passes.
//
// rayid is mounted first so that rejected requests are traced too.
package middleware
