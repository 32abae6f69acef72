package object

// NotImplementedType is the type of the NotImplemented sentinel.
type NotImplementedType struct{}

func (n *NotImplementedType) Type() Type {
	return NOT_IMPLEMENTED
}

func (n *NotImplementedType) Class() *Class {
	return notImplementedClass
}

func (n *NotImplementedType) Inspect() string {
	return "NotImplemented"
}

func (n *NotImplementedType) String() string {
	return "NotImplemented"
}

func (n *NotImplementedType) Interface() interface{} {
	return nil
}

func (n *NotImplementedType) Equals(other Object) bool {
	_, ok := other.(*NotImplementedType)
	return ok
}

func (n *NotImplementedType) IsTruthy() bool {
	return true
}
