package browser

import (
	"github.com/codeGROOVE-dev/liprofile/pkg/auth"
	"github.com/go-rod/rod/lib/proto"
)

// cookieParams converts cookies to DevTools parameters, skipping unnamed ones.
func cookieParams(cookies []auth.Cookie) []*proto.NetworkCookieParam {
	var params []*proto.NetworkCookieParam
	for _, c := range cookies {
		if c.Name == "" {
			continue
		}
		path := c.Path
		if path == "" {
			path = "/"
		}
		params = append(params, &proto.NetworkCookieParam{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     path,
			Secure:   c.Secure,
			HTTPOnly: c.HTTPOnly,
			SameSite: sameSite(c.SameSite),
		})
	}
	return params
}

func sameSite(s string) proto.NetworkCookieSameSite {
	switch auth.NormalizeSameSite(s) {
	case "Strict":
		return proto.NetworkCookieSameSiteStrict
	case "None":
		return proto.NetworkCookieSameSiteNone
	default:
		return proto.NetworkCookieSameSiteLax
	}
}
