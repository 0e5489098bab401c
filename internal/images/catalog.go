package images

var serviceImages = map[string][]string{
	"emergency-plumbing": {
		"https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=1200&q=80",
		"https://images.unsplash.com/photo-1585704032915-c3400ca199e7?w=1200&q=80",
		"https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=1200&q=80",
	},
	"blocked-drains": {
		"https://images.unsplash.com/photo-1585704032915-c3400ca199e7?w=1200&q=85",
		"https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=1200&q=85",
		"https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=1200&q=80",
	},
	"hot-water-systems": {
		"https://images.unsplash.com/photo-1585771724684-38269d6639fd?w=1200&q=80",
		"https://images.unsplash.com/photo-1604709177225-055f99402ea3?w=1200&q=80",
		"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=1200&q=80",
	},
	"leak-detection": {
		"https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=1200&q=85",
		"https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=1200&q=90",
		"https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=1200&q=85",
	},
	"gas-fitting": {
		"https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=1200&q=85",
		"https://images.unsplash.com/photo-1545167622-3a6ac756afa4?w=1200&q=80",
		"https://images.unsplash.com/photo-1621905251189-08b45d6a269e?w=1200&q=80",
	},
	"bathroom-renovations": {
		"https://images.unsplash.com/photo-1552321554-5fefe8c9ef14?w=1200&q=80",
		"https://images.unsplash.com/photo-1620626011761-996317b8d101?w=1200&q=80",
		"https://images.unsplash.com/photo-1584622650111-993a426fbf0a?w=1200&q=80",
	},
	"toilet-repairs": {
		"https://images.unsplash.com/photo-1564540586988-aa4e53c3d799?w=1200&q=80",
		"https://images.unsplash.com/photo-1625177667260-64a7d313c58c?w=1200&q=80",
		"https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=1200&q=75",
	},
	"tap-installation": {
		"https://images.unsplash.com/photo-1584622650111-993a426fbf0a?w=1200&q=85",
		"https://images.unsplash.com/photo-1585771724684-38269d6639fd?w=1200&q=85",
		"https://images.unsplash.com/photo-1620626011761-996317b8d101?w=1200&q=85",
	},
	"pipe-relining": {
		"https://images.unsplash.com/photo-1581578731548-c64695cc6952?w=1200&q=90",
		"https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=1200&q=90",
		"https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=1200&q=80",
	},
	"stormwater-drainage": {
		"https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=1200&q=80",
		"https://images.unsplash.com/photo-1585320806297-9794b3e4eeae?w=1200&q=80",
		"https://images.unsplash.com/photo-1558904541-efa843a96f01?w=1200&q=80",
	},
	"kitchen-plumbing": {
		"https://images.unsplash.com/photo-1556911220-bff31c812dba?w=1200&q=80",
		"https://images.unsplash.com/photo-1556909114-f6e7ad7d3136?w=1200&q=80",
		"https://images.unsplash.com/photo-1584622650111-993a426fbf0a?w=1200&q=90",
	},
	"roof-plumbing": {
		"https://images.unsplash.com/photo-1590908301674-14e8ddaf1c23?w=1200&q=80",
		"https://images.unsplash.com/photo-1621905252507-b35492cc74b4?w=1200&q=80",
		"https://images.unsplash.com/photo-1632778149955-e80f8ceca2e8?w=1200&q=80",
	},
	DefaultKey: {
		"https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=1200&q=80",
		"https://images.unsplash.com/photo-1585704032915-c3400ca199e7?w=1200&q=80",
		"https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=1200&q=80",
	},
}

// Hero images for the homepage.
var Hero = []string{
	"https://images.unsplash.com/photo-1621905251189-08b45d6a269e?w=1920&q=80",
	"https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=1920&q=80",
}

// Team images for the about page.
var Team = []string{
	"https://images.unsplash.com/photo-1560250097-0b93528c311a?w=800&q=80",
	"https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=800&q=80",
	"https://images.unsplash.com/photo-1519085360753-af0119f7cbe7?w=800&q=80",
}

var blogPlaceholders = []string{
	"https://images.unsplash.com/photo-1607472586893-edb57bdc0e39?w=800&q=80",
	"https://images.unsplash.com/photo-1585704032915-c3400ca199e7?w=800&q=80",
	"https://images.unsplash.com/photo-1552321554-5fefe8c9ef14?w=800&q=80",
	"https://images.unsplash.com/photo-1564540586988-aa4e53c3d799?w=800&q=80",
	"https://images.unsplash.com/photo-1585771724684-38269d6639fd?w=800&q=80",
}

// BlogPlaceholder returns a stand-in image for posts without a featured image.
func BlogPlaceholder(index int) string {
	return blogPlaceholders[wrap(index, len(blogPlaceholders))]
}

// DefaultSelector returns a Selector over the built-in service image lists.
func DefaultSelector() *Selector {
	s, err := NewSelector(serviceImages)
	if err != nil {
		panic(err)
	}
	return s
}
