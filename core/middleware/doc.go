// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation (X-API-Key header or api_key query) protecting
//     every importer and integrity route.
//   - rayid: Assigns a ray id to every request, stores it in the fiber locals
//     under "ray_id" for logger.WithRayID and echoes it in the X-Ray-ID header.
//
// Swagger documentation is registered before auth and stays public.
package middleware
