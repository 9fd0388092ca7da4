package domain

type Platform string

const (
	PlatformFacebook Platform = "facebook"
	PlatformTwitter  Platform = "twitter"
	PlatformSnapchat Platform = "snapchat"
)

// Platforms lista as plataformas suportadas na ordem em que aparecem na saída
var Platforms = []Platform{PlatformFacebook, PlatformTwitter, PlatformSnapchat}

func (p Platform) String() string {
	return string(p)
}
