package renderer

import (
	"math"
	"math/rand"

	"github.com/tedkb/go-raytracer/pkg/core"
	"github.com/tedkb/go-raytracer/pkg/geometry"
	"github.com/tedkb/go-raytracer/pkg/image"
)

// Options contains rendering configuration, passed by value into the render
// entry point. No process-wide state.
type Options struct {
	SamplesPerPixel int         // Number of jittered primary rays per pixel
	MaxRayBounces   int         // Path depth cap per sample
	PositiveIsUp    bool        // Write rows bottom-to-top when true
	Workers         int         // Row workers; <= 0 means one per CPU
	Seed            int64       // Base seed; each row derives its own stream
	Logger          core.Logger // Optional progress sink
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		SamplesPerPixel: 32,
		MaxRayBounces:   8,
		PositiveIsUp:    true,
		Workers:         1,
		Seed:            1,
	}
}

// Raytracer renders a world through a camera into a framebuffer
type Raytracer struct {
	world   *geometry.World
	camera  *Camera
	options Options
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world *geometry.World, camera *Camera, options Options) *Raytracer {
	return &Raytracer{
		world:   world,
		camera:  camera,
		options: options,
	}
}

var (
	white   = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
)

// backgroundGradient is the sky color for a ray that escapes all geometry:
// a vertical lerp from white at the horizon to blue at the zenith
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return white.Lerp(skyBlue, t)
}

// rayColor traces one radiance sample as a bounded random walk: intersect,
// scatter, accumulate attenuation, repeat. An explicit loop with a depth
// counter, not recursion.
func (rt *Raytracer) rayColor(ray core.Ray, random *rand.Rand) core.Vec3 {
	attenuation := white

	for bounce := 0; bounce < rt.options.MaxRayBounces; bounce++ {
		hit, isHit := rt.world.Hit(ray)
		if !isHit {
			return attenuation.MultiplyVec(backgroundGradient(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, random)
		if !didScatter {
			// Absorbed
			return attenuation.MultiplyVec(scatter.Attenuation)
		}

		attenuation = attenuation.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Bounce cap exhausted: no more light is gathered
	return core.NewVec3(0, 0, 0)
}

// renderRow renders one framebuffer row with its own random stream
func (rt *Raytracer) renderRow(fb *image.Framebuffer, row int) {
	random := rand.New(rand.NewSource(rt.options.Seed + int64(row)))

	width := fb.Width
	height := fb.Height
	invSamples := 1.0 / float64(rt.options.SamplesPerPixel)

	// The orientation flag only changes write order, not sampling
	destRow := row
	if rt.options.PositiveIsUp {
		destRow = height - row - 1
	}

	for column := 0; column < width; column++ {
		color := core.NewVec3(0, 0, 0)
		for sample := 0; sample < rt.options.SamplesPerPixel; sample++ {
			u := (float64(column) + random.Float64()) / float64(width-1)
			v := (float64(row) + random.Float64()) / float64(height-1)
			ray := rt.camera.CastRay(u, v)
			color = color.Add(rt.rayColor(ray, random))
		}

		// Average, gamma correct (approximate to sqrt), quantize
		fb.SetRGBA(destRow, column,
			quantize(color.X*invSamples),
			quantize(color.Y*invSamples),
			quantize(color.Z*invSamples),
			255,
		)
	}
}

// quantize maps an averaged linear channel to 8 bits with sqrt gamma
func quantize(channel float64) uint8 {
	v := math.Sqrt(channel) * 255.999
	if v > 255 {
		v = 255
	}
	if v < 0 {
		v = 0
	}
	return uint8(v)
}

// RenderTo renders the scene into the given framebuffer. Rows are
// partitioned across workers; every row's random stream depends only on the
// base seed and the row index, so the output is identical for any worker
// count.
func (rt *Raytracer) RenderTo(fb *image.Framebuffer) {
	pool := NewWorkerPool(rt.options.Workers)
	pool.Run(fb.Height, func(row int) {
		rt.renderRow(fb, row)
		if rt.options.Logger != nil {
			rt.options.Logger.Printf("\rScanline: %-4d", fb.Height-row-1)
		}
	})
}

// Render allocates a framebuffer of the given size and renders into it
func (rt *Raytracer) Render(width, height int) *image.Framebuffer {
	fb := image.NewFramebuffer(width, height)
	rt.RenderTo(fb)
	return fb
}

// RenderInto renders a world through a camera into a caller-provided
// contiguous RGBA buffer of fixed width and height. The buffer length is
// validated; pixels land directly in the caller's memory.
func RenderInto(world *geometry.World, camera *Camera, pixels []uint8, width, height int, options Options) error {
	fb, err := image.FromPixels(pixels, width, height)
	if err != nil {
		return err
	}
	NewRaytracer(world, camera, options).RenderTo(fb)
	return nil
}
