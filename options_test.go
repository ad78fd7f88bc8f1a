package scene_test

import (
	"testing"

	"github.com/go-theft-auto/scene"
)

func TestCameraOptions(t *testing.T) {
	def := scene.DefaultCamera()

	tests := []struct {
		name string
		opt  scene.Option
		want scene.Camera
	}{
		{"fov zero ignored", scene.WithFieldOfView(0), def},
		{"fov 180 ignored", scene.WithFieldOfView(180), def},
		{"fov negative ignored", scene.WithFieldOfView(-30), def},
		{"fov 90", scene.WithFieldOfView(90), scene.Camera{FieldOfView: 90, Distance: def.Distance}},
		{"distance zero ignored", scene.WithCameraDistance(0), def},
		{"distance negative ignored", scene.WithCameraDistance(-1), def},
		{"distance 4", scene.WithCameraDistance(4), scene.Camera{FieldOfView: def.FieldOfView, Distance: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canvas := newFakeCanvas(800, 600)
			r := openDefault(t, canvas, tt.opt)
			defer r.Delete()

			if err := r.Render(); err != nil {
				t.Fatal(err)
			}
			want := tt.want.Transform(800, 600)
			if got := r.Transform(); got != want {
				t.Errorf("transform mismatch:\nwant %v\ngot  %v", want, got)
			}
		})
	}
}
