// Package clientip resolves the address of the client behind a request,
// honouring common proxy headers, and carries it in the request context for
// logging and rate limiting.
//
// GetIP trusts proxy headers from anyone. A Resolver only trusts them from
// the configured proxies:
//
//	resolver, err := clientip.NewResolver("10.0.0.0/8")
//	if err != nil {
//		return err
//	}
//	r.Use(clientip.ResolveWith(resolver.GetIP))
package clientip
