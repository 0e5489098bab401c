package site

import (
	"html/template"
	"net/http"

	"github.com/rapidresponse/leadsite/internal/images"
	"github.com/rapidresponse/leadsite/internal/leads"
	"github.com/rapidresponse/leadsite/internal/model"
	"github.com/rapidresponse/leadsite/internal/route"
)

const (
	tplHome      = "home.html"
	tplAbout     = "about.html"
	tplContact   = "contact.html"
	tplServices  = "services.html"
	tplService   = "service.html"
	tplLocations = "locations.html"
	tplLocation  = "location.html"
	tplCombined  = "combined.html"
	tplBlog      = "blog.html"
	tplPost      = "post.html"
	tplNotFound  = "404.html"
)

// ServiceCard pairs a service with the image shown on its card.
type ServiceCard struct {
	Service model.Service
	Image   string
}

// PostCard pairs a post with the image shown on its card.
type PostCard struct {
	Post  model.BlogPost
	Image string
}

// View is the data passed to a page layout. Each page fills only the fields
// its layout reads.
type View struct {
	Meta Meta
	Site Info

	HeroImage     string
	Team          []string
	ServiceCards  []ServiceCard
	Locations     []model.Location
	Service       model.Service
	Location      model.Location
	OtherServices []model.Service
	PostCards     []PostCard
	Post          model.BlogPost
	PostHTML      template.HTML
	Form          *leads.Form
}

// Page is one assembled, renderable page.
type Page struct {
	Path   string
	Layout string
	Status int
	View   View
}

func (s *Site) page(path, layout string, meta Meta) Page {
	return Page{
		Path:   path,
		Layout: layout,
		Status: http.StatusOK,
		View:   View{Meta: meta, Site: s.info},
	}
}

// serviceCards picks images through alloc so no two cards on the page share
// one while candidates remain.
func serviceCards(services []model.Service, alloc *images.Allocator) []ServiceCard {
	cards := make([]ServiceCard, len(services))
	for i, svc := range services {
		cards[i] = ServiceCard{Service: svc, Image: alloc.Unique(svc.Slug, i)}
	}
	return cards
}

func postCards(posts []model.BlogPost) []PostCard {
	cards := make([]PostCard, len(posts))
	for i, p := range posts {
		img := p.FeaturedImage
		if img == "" {
			img = images.BlogPlaceholder(i)
		}
		cards[i] = PostCard{Post: p, Image: img}
	}
	return cards
}

func (s *Site) Home() Page {
	p := s.page("/", tplHome, s.homeMeta())
	p.View.HeroImage = images.Hero[0]
	p.View.ServiceCards = serviceCards(s.catalog.Services(), s.selector.NewAllocator())
	p.View.Locations = s.catalog.FirstLocations(featuredLocales)
	return p
}

func (s *Site) About() Page {
	p := s.page("/about", tplAbout, s.meta("/about",
		s.titled("About Us"),
		"Learn about "+s.cfg.Business.Name+", "+s.cfg.Business.Region+"'s trusted plumbing experts with over 25 years of experience.",
	))
	p.View.Team = images.Team
	return p
}

// Contact renders the quote form in whatever state form is in. A nil form is
// shown idle.
func (s *Site) Contact(form *leads.Form) Page {
	if form == nil {
		form = leads.NewForm()
	}
	p := s.page("/contact", tplContact, s.meta("/contact",
		s.titled("Contact Us"),
		"Contact "+s.cfg.Business.Name+" for a free quote or 24/7 emergency plumbing service. Call "+s.cfg.Business.Phone+".",
	))
	p.View.Form = form
	return p
}

func (s *Site) ServicesIndex() Page {
	p := s.page("/services", tplServices, s.meta("/services",
		s.titled("Plumbing Services "+s.cfg.Business.Region),
		"Complete plumbing services across "+s.cfg.Business.Region+". Emergency repairs, blocked drains, hot water, gas fitting and more. Available 24/7.",
	))
	services := s.catalog.Services()
	cards := make([]ServiceCard, len(services))
	for i, svc := range services {
		cards[i] = ServiceCard{Service: svc, Image: s.selector.Image(svc.Slug, 0)}
	}
	p.View.ServiceCards = cards
	return p
}

// Service assembles the page for one service, or reports false when slug is
// not in the catalog.
func (s *Site) Service(slug string) (Page, bool) {
	svc, ok := s.catalog.Service(slug)
	if !ok {
		return Page{}, false
	}
	path := "/services/" + svc.Slug
	p := s.page(path, tplService, s.serviceMeta(path, svc))
	p.View.Service = svc
	p.View.HeroImage = s.selector.Image(svc.Slug, 0)
	p.View.Locations = s.catalog.FirstLocations(featuredLocales)

	others := s.catalog.OtherServices(svc.Slug, relatedServices)
	alloc := s.selector.NewAllocator()
	alloc.Unique(svc.Slug, 0)
	p.View.ServiceCards = serviceCards(others, alloc)
	return p, true
}

func (s *Site) LocationsIndex() Page {
	p := s.page("/locations", tplLocations, s.meta("/locations",
		s.titled("Service Areas"),
		"Plumbing services across all "+s.cfg.Business.Region+" suburbs. Find your local plumber for fast, reliable 24/7 service.",
	))
	p.View.Locations = s.catalog.Locations()
	return p
}

func (s *Site) Location(slug string) (Page, bool) {
	loc, ok := s.catalog.Location(slug)
	if !ok {
		return Page{}, false
	}
	path := "/locations/" + loc.Slug
	p := s.page(path, tplLocation, s.locationMeta(path, loc))
	p.View.Location = loc
	p.View.ServiceCards = serviceCards(s.catalog.Services(), s.selector.NewAllocator())
	return p, true
}

// Combined assembles the service-in-location page for token. The resolution
// result is returned as well so callers can report why a token missed.
func (s *Site) Combined(token string) (Page, route.Result) {
	res := s.resolver.Resolve(token)
	if !res.Found() {
		return Page{}, res
	}
	path := "/" + route.Join(res.Service.Slug, res.Location.Slug)
	p := s.page(path, tplCombined, s.combinedMeta(path, res.Service, res.Location))
	p.View.Service = res.Service
	p.View.Location = res.Location
	p.View.HeroImage = s.selector.Image(res.Service.Slug, 0)
	p.View.OtherServices = s.catalog.OtherServices(res.Service.Slug, relatedServices)
	return p, res
}

func (s *Site) BlogIndex() Page {
	p := s.page("/blog", tplBlog, s.meta("/blog",
		s.titled("Plumbing Tips & Advice Blog"),
		"Expert plumbing tips, advice and guides from "+s.cfg.Business.Region+"'s trusted plumbers.",
	))
	p.View.PostCards = postCards(s.posts.All())
	return p
}

func (s *Site) Post(slug string) (Page, bool) {
	post, ok := s.posts.Get(slug)
	if !ok {
		return Page{}, false
	}
	path := "/blog/" + post.Slug
	p := s.page(path, tplPost, s.postMeta(path, post))
	p.View.Post = post
	p.View.PostHTML = s.postHTML[post.Slug]
	p.View.HeroImage = post.FeaturedImage
	p.View.PostCards = postCards(s.posts.Related(post.Slug, relatedPostCount))
	return p, true
}

// NotFound is the page served for any path that resolves to nothing.
func (s *Site) NotFound() Page {
	p := s.page("", tplNotFound, s.notFoundMeta())
	p.Status = http.StatusNotFound
	return p
}

// Pages enumerates every indexable page: the fixed pages, one per service,
// location and post, and one per service × location pair.
func (s *Site) Pages() []Page {
	services := s.catalog.Services()
	locations := s.catalog.Locations()
	posts := s.posts.All()

	pages := make([]Page, 0, 6+len(services)+len(locations)+len(posts)+len(services)*len(locations))
	pages = append(pages, s.Home(), s.About(), s.Contact(nil), s.ServicesIndex(), s.LocationsIndex(), s.BlogIndex())

	for _, svc := range services {
		if p, ok := s.Service(svc.Slug); ok {
			pages = append(pages, p)
		}
	}
	for _, loc := range locations {
		if p, ok := s.Location(loc.Slug); ok {
			pages = append(pages, p)
		}
	}
	for _, post := range posts {
		if p, ok := s.Post(post.Slug); ok {
			pages = append(pages, p)
		}
	}
	for _, token := range s.resolver.Tokens() {
		if p, res := s.Combined(token); res.Found() {
			pages = append(pages, p)
		}
	}
	return pages
}
