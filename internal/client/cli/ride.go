package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/superapp/internal/client/models"
)

var errRideUsage = errors.New("usage: ridestatus <id>")

func getLocation(reader *bufio.Reader, name string, w io.Writer) (models.Location, error) {
	lat, err := getFloat(reader, name+" latitude", w)
	if err != nil {
		return models.Location{}, err
	}
	lon, err := getFloat(reader, name+" longitude", w)
	if err != nil {
		return models.Location{}, err
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return models.Location{}, fmt.Errorf("%s is off the map: %v, %v", name, lat, lon)
	}
	addr, err := getSimpleText(reader, name+" address (optional)", w)
	if err != nil {
		return models.Location{}, err
	}
	return models.Location{Latitude: lat, Longitude: lon, Address: addr}, nil
}

func (a *App) Ride(ctx context.Context) error {
	origin, err := getLocation(a.reader, "Pickup", a.out)
	if err != nil {
		return err
	}
	destination, err := getLocation(a.reader, "Destination", a.out)
	if err != nil {
		return err
	}

	r, err := a.activityService.RequestRide(ctx, origin, destination)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Ride %s: %s\n", r.RideID, r.Status)
	fmt.Fprintf(a.out, "Estimated %d min, %.2f\n", r.EstimatedDuration, r.EstimatedCost)
	return nil
}

func (a *App) RideStatus(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errRideUsage
	}

	st, err := a.activityService.RideStatus(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Ride %s: %s\n", st.RideID, st.Status)
	if st.DriverID != "" {
		fmt.Fprintf(a.out, "Driver: %s\n", st.DriverID)
	}
	if st.TokensEarned > 0 {
		fmt.Fprintf(a.out, "Tokens earned: %d\n", st.TokensEarned)
	}
	return nil
}
