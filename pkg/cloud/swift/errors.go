package swift

import (
	"errors"

	"github.com/ncw/swift/v2"

	"github.com/groveco/cloudbrowser/pkg/cloud"
)

// translateErr maps vendor SDK errors onto the common cloud taxonomy.
//
// Known vendor errors are replaced with the matching sentinel; anything
// else is passed through inside the wrapper so the original vendor
// message survives. Called at every vendor call site.
func translateErr(op, container, object string, err error) error {
	if err == nil {
		return nil
	}

	wrapped := &cloud.Error{
		Op:        op,
		Container: container,
		Object:    object,
		Err:       err,
	}

	switch {
	case errors.Is(err, swift.ContainerNotFound):
		wrapped.Err = cloud.ErrNoContainer
	case errors.Is(err, swift.ObjectNotFound):
		wrapped.Err = cloud.ErrNoObject
	}

	return wrapped
}
