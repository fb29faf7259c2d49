package room

import (
	"context"
	"fmt"

	"github.com/Verdant-Codeworks/Verdantia-sub001/internal/coord"
)

// GetRoomsInRadius retrieves every room within the given Manhattan radius of
// center on the same z plane, generating missing rooms through the base path
// so an area fetch never cascades into neighbor pre-generation.
func (s *Service) GetRoomsInRadius(ctx context.Context, center coord.Coordinate, radius int) ([]*GeneratedRoom, error) {
	var coordinates []coord.Coordinate
	for x := center.X - radius; x <= center.X+radius; x++ {
		for y := center.Y - radius; y <= center.Y+radius; y++ {
			distance := abs(x-center.X) + abs(y-center.Y)
			if distance <= radius {
				coordinates = append(coordinates, coord.Coordinate{X: x, Y: y, Z: center.Z})
			}
		}
	}

	return s.getRoomsParallel(ctx, coordinates)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// getRoomsParallel processes a list of coordinates with a small worker pool.
func (s *Service) getRoomsParallel(ctx context.Context, coordinates []coord.Coordinate) ([]*GeneratedRoom, error) {
	if len(coordinates) == 0 {
		return []*GeneratedRoom{}, nil
	}

	workerCount := 4
	if len(coordinates) < workerCount {
		workerCount = len(coordinates)
	}

	coordChan := make(chan coord.Coordinate, len(coordinates))
	resultChan := make(chan *GeneratedRoom, len(coordinates))
	errChan := make(chan error, workerCount)
	doneChan := make(chan struct{})

	for i := 0; i < workerCount; i++ {
		go s.roomWorker(ctx, coordChan, resultChan, errChan, doneChan)
	}

	go func() {
		defer close(coordChan)
		for _, c := range coordinates {
			coordChan <- c
		}
	}()

	var rooms []*GeneratedRoom
	for {
		select {
		case r := <-resultChan:
			rooms = append(rooms, r)
			if len(rooms) >= len(coordinates) {
				close(doneChan)
				return rooms, nil
			}
		case err := <-errChan:
			close(doneChan)
			return nil, err
		case <-ctx.Done():
			close(doneChan)
			return nil, ctx.Err()
		}
	}
}

// roomWorker processes coordinates from a channel until the work runs out or
// the fetch is abandoned.
func (s *Service) roomWorker(ctx context.Context, coordChan <-chan coord.Coordinate, resultChan chan<- *GeneratedRoom, errChan chan<- error, doneChan <-chan struct{}) {
	for {
		select {
		case c, ok := <-coordChan:
			if !ok {
				return
			}

			r, err := s.lookupOrGenerate(ctx, c)
			if err != nil {
				select {
				case errChan <- fmt.Errorf("failed to get room %s: %w", c, err):
				case <-doneChan:
				}
				return
			}

			select {
			case resultChan <- r:
			case <-doneChan:
				return
			}
		case <-doneChan:
			return
		case <-ctx.Done():
			return
		}
	}
}
