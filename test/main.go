package main

import (
	"fmt"
	"net/netip"

	"github.com/hansthienpondt/nipam/pkg/table"
	"github.com/henderiw/rangerel/pkg/interval"
	"github.com/henderiw/rangerel/pkg/iprange"
	"github.com/henderiw/rangerel/pkg/rangerel"
	"k8s.io/apimachinery/pkg/labels"
)

var routes = []struct {
	prefix string
	labels map[string]string
}{
	{prefix: "10.0.0.0/24", labels: map[string]string{"env": "prod"}},
	{prefix: "10.0.1.0/24", labels: map[string]string{"env": "prod"}},
	{prefix: "10.0.0.0/16", labels: map[string]string{"env": "test"}},
	{prefix: "192.168.0.0/24", labels: map[string]string{"env": "prod"}},
}

func main() {
	a := rangerel.New[int]()

	l := interval.New(1, 10)
	r := interval.New(5, 15)
	for _, name := range []string{"overlaps", "before", "meets", "anyinteracts"} {
		ok, err := a.Query(l, r, name)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%s %s %s: %t\n", l, name, r, ok)
	}

	var rts table.Routes
	for _, rt := range routes {
		rts = append(rts, table.NewRoute(netip.MustParsePrefix(rt.prefix), rt.labels, nil))
	}

	sel := labels.SelectorFromSet(labels.Set{"env": "prod"})
	for _, rt := range iprange.RelatedRoutes(rts, netip.MustParsePrefix("10.0.0.0/24"), rangerel.Intersects, sel) {
		fmt.Println("intersecting prod route", rt.Prefix())
	}
}
