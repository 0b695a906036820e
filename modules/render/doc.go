// Package render exposes the tagline renderers over HTTP.
//
// Router mounts three optional services next to the liveness and readiness
// probes:
//
//   - RenderService renders blocks through a hooks.Registry: the standalone
//     block, the site tagline variation, whole pages of blocks and a datastar
//     preview.
//   - TaglineService imports bulk taglines from pasted text or CSV and
//     exports a list as CSV.
//   - LegacyService lists posts that still use the legacy block and converts
//     legacy attributes to the site tagline variation.
//
// Every request gets an X-Request-ID header and a resolved client address.
// RouterOptions.RateLimit, when set, guards the services but not the probes.
package render
