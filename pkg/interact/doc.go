// Package interact implements pointer highlighting and the chart tooltip.
//
// Every interactive primitive is either idle or hovered. Entering one
// darkens its fill immediately and shows the tooltip next to the pointer;
// leaving restores the fill and fades the tooltip out, removing its node
// once the fade completes.
//
// A [Layer] owns exactly one tooltip node. Entering another primitive, even
// while the tooltip is fading, cancels the fade and moves the same node.
// [Layer.Detach] removes every handler the layer attached and releases the
// tooltip.
package interact
