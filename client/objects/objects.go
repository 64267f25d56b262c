package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetChildren() []GameObject
}

// BaseObject is a no-op GameObject that holds children. Concrete objects
// embed it and override the lifecycle methods they need.
type BaseObject struct {
	id       string
	children []GameObject
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, children ...GameObject) *BaseObject {
	return &BaseObject{
		id:       id,
		children: children,
	}
}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children
}

func (o *BaseObject) AddChild(child GameObject) {
	o.children = append(o.children, child)
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

// InitTree initializes obj, then its children depth first.
func InitTree(obj GameObject) error {
	if err := obj.Init(); err != nil {
		return fmt.Errorf("failed to init %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of obj before obj itself.
func DestroyTree(obj GameObject) error {
	for _, child := range obj.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := obj.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy %s: %v", obj.GetID(), err)
	}
	return nil
}

func UpdateTree(obj GameObject) error {
	if err := obj.Update(); err != nil {
		return fmt.Errorf("failed to update %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws obj below its children.
func DrawTree(obj GameObject, screen *ebiten.Image) {
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}
