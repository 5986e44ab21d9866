// Package zone contains the Zone aggregate: a named polygonal service area
// whose boundary is one or more closed rings of (lat,lng) vertices. It also
// provides ingestion of externally-sourced GeoJSON Polygon/MultiPolygon
// boundaries, transposing their (lng,lat) positions into domain order.
package zone
