// Package features holds the feature data a navigation graph is built
// over — obstacle and recharge-water polygons plus arbitrary query points —
// and NodeData, the typed, comparable identity used to address a vertex of
// either without carrying its coordinate around.
package features
