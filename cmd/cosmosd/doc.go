// Package main runs the SocialCosmos HTTP API server.
//
// The server exposes the JSON API in internal/api over the file-backed
// stores in the configured data directory. Configuration comes from the
// environment:
//
//	COSMOS_DATA_DIR          data directory (default ~/.socialcosmos)
//	COSMOS_ADDR              listen address (default :8080)
//	COSMOS_JWT_SECRET        access-token signing secret (default: random
//	                         per process, invalidating tokens on restart)
//	COSMOS_ACCESS_TOKEN_TTL  transient login validity (default 15m)
//	COSMOS_SESSION_TTL       remembered session validity (default 720h)
//
// The process shuts down gracefully on SIGINT or SIGTERM, draining in-flight
// requests before exiting.
package main
