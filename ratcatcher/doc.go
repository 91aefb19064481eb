// Package ratcatcher implements the ratcatcher pursuit-game oracle
// (Component E): a yes/no decision procedure answering "is G's carving
// width strictly less than k?" by simulating a pursuit game on G's planar
// dual, grounded directly on opt/ratcatcher.py's ratcatcher() function.
//
// The oracle never computes a carving decomposition itself — see package
// carving for the binary search that calls Decide repeatedly, and package
// driver/contractiontree for the decomposition construction once the
// carving width is known.
package ratcatcher
